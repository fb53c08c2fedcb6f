package catalog

// pageTemplate is the catalog page. The layout is a responsive card grid;
// every record field passes through the template's contextual escaping.
const pageTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Catálogo de Productos</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            padding: 20px;
        }

        .container {
            max-width: 1400px;
            margin: 0 auto;
        }

        header {
            text-align: center;
            color: white;
            margin-bottom: 40px;
            padding: 30px 0;
        }

        header h1 {
            font-size: 2.5em;
            margin-bottom: 10px;
            text-shadow: 2px 2px 4px rgba(0,0,0,0.3);
        }

        header p {
            font-size: 1.2em;
            opacity: 0.9;
        }

        .products-grid {
            display: grid;
            grid-template-columns: repeat(auto-fill, minmax(350px, 1fr));
            gap: 30px;
            margin-bottom: 40px;
        }

        .product-card {
            background: white;
            border-radius: 15px;
            overflow: hidden;
            box-shadow: 0 10px 30px rgba(0,0,0,0.2);
            transition: transform 0.3s ease, box-shadow 0.3s ease;
            display: flex;
            flex-direction: column;
        }

        .product-card:hover {
            transform: translateY(-5px);
            box-shadow: 0 15px 40px rgba(0,0,0,0.3);
        }

        .product-image-container {
            position: relative;
            width: 100%;
            height: 300px;
            overflow: hidden;
            background: #f5f5f5;
        }

        .product-image {
            width: 100%;
            height: 100%;
            object-fit: cover;
            transition: transform 0.3s ease;
        }

        .product-card:hover .product-image {
            transform: scale(1.05);
        }

        .product-image-gallery {
            display: flex;
            gap: 5px;
            padding: 10px;
            background: #f9f9f9;
            overflow-x: auto;
        }

        .product-image-gallery img {
            width: 60px;
            height: 60px;
            object-fit: cover;
            border-radius: 5px;
            cursor: pointer;
            border: 2px solid transparent;
            transition: border-color 0.3s ease;
        }

        .product-image-gallery img:hover {
            border-color: #667eea;
        }

        .product-info {
            padding: 25px;
            flex-grow: 1;
            display: flex;
            flex-direction: column;
        }

        .product-title {
            font-size: 1.5em;
            font-weight: bold;
            color: #333;
            margin-bottom: 15px;
            line-height: 1.3;
        }

        .product-price {
            font-size: 2em;
            font-weight: bold;
            color: #667eea;
            margin-bottom: 15px;
        }

        .product-description {
            color: #666;
            line-height: 1.6;
            margin-bottom: 20px;
            flex-grow: 1;
            overflow: hidden;
            text-overflow: ellipsis;
            display: -webkit-box;
            -webkit-line-clamp: 4;
            -webkit-box-orient: vertical;
        }

        .product-description em {
            color: #999;
        }

        .product-attributes {
            margin-top: 15px;
            padding-top: 15px;
            border-top: 1px solid #eee;
        }

        .product-attributes h4 {
            color: #333;
            margin-bottom: 10px;
            font-size: 0.9em;
            text-transform: uppercase;
            letter-spacing: 1px;
        }

        .product-attributes ul {
            list-style: none;
            padding-left: 0;
        }

        .product-attributes li {
            color: #666;
            padding: 5px 0;
            font-size: 0.9em;
        }

        .product-attributes li::before {
            content: "✓ ";
            color: #667eea;
            font-weight: bold;
        }

        .product-attributes p {
            color: #666;
            font-size: 0.9em;
        }

        .product-link {
            display: inline-block;
            margin-top: 15px;
            padding: 12px 25px;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            text-decoration: none;
            border-radius: 25px;
            text-align: center;
            transition: opacity 0.3s ease;
            font-weight: 600;
        }

        .product-link:hover {
            opacity: 0.9;
        }

        .product-meta {
            font-size: 0.85em;
            color: #999;
            margin-top: 15px;
            padding-top: 15px;
            border-top: 1px solid #eee;
        }

        .specifications {
            margin-top: 15px;
        }

        .specifications h5 {
            color: #333;
            margin-bottom: 8px;
            font-size: 0.95em;
        }

        .specifications p {
            color: #666;
            font-size: 0.9em;
            margin-top: 5px;
        }

        .specifications ul {
            list-style: none;
            padding-left: 0;
        }

        .specifications li {
            color: #666;
            padding: 3px 0;
            font-size: 0.85em;
            padding-left: 15px;
            position: relative;
        }

        .specifications li::before {
            content: "•";
            position: absolute;
            left: 0;
            color: #667eea;
        }

        @media (max-width: 768px) {
            .products-grid {
                grid-template-columns: 1fr;
            }

            header h1 {
                font-size: 2em;
            }
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>Catálogo de Productos</h1>
            <p>{{.Count}} producto(s) - generado el {{.GeneratedAt}}</p>
        </header>

        <div class="products-grid">
{{- range .Cards}}
            <div class="product-card">
                <div class="product-image-container">
                    {{- if .MainImage}}
                    <img src="{{.MainImage}}" alt="{{.Title}}" class="product-image">
                    {{- end}}
                </div>
                {{- if .Gallery}}
                <div class="product-image-gallery">
                    {{- range .Gallery}}
                    <img src="{{.}}" alt="Vista adicional" onclick="showImage(this)">
                    {{- end}}
                </div>
                {{- end}}
                <div class="product-info">
                    <h2 class="product-title">{{.Title}}</h2>
                    <div class="product-price">${{.Price}}</div>
                    <div class="product-description">
                        {{- if .DescriptionLines}}
                        {{- range $i, $line := .DescriptionLines}}
                        {{- if $i}}<br>{{end}}{{$line}}
                        {{- end}}
                        {{- else}}
                        <em>Descripción no disponible</em>
                        {{- end}}
                    </div>
                    {{- if .Categories}}
                    <div class="product-attributes">
                        <h4>Categorías</h4>
                        <ul>
                            {{- range .Categories}}
                            <li>{{.}}</li>
                            {{- end}}
                        </ul>
                    </div>
                    {{- end}}
                    {{- if .Specs}}
                    <div class="specifications">
                        {{- range .Specs}}
                        <h5>{{.Label}}</h5>
                        {{- if .Items}}
                        <ul>
                            {{- range .Items}}
                            <li>{{.}}</li>
                            {{- end}}
                        </ul>
                        {{- else}}
                        <p>{{.Text}}</p>
                        {{- end}}
                        {{- end}}
                    </div>
                    {{- end}}
                    {{- if .SKU}}
                    <div class="product-attributes">
                        <h4>SKU</h4>
                        <p>{{.SKU}}</p>
                    </div>
                    {{- end}}
                    {{- if .Availability}}
                    <div class="product-attributes">
                        <h4>Disponibilidad</h4>
                        <p>{{.Availability}}</p>
                    </div>
                    {{- end}}
                    <a href="{{.URL}}" target="_blank" class="product-link">
                        Ver producto original →
                    </a>
                    <div class="product-meta">
                        Extraído el: {{.ExtractedAt}}
                    </div>
                </div>
            </div>
{{- end}}
        </div>
    </div>

    <script>
        function showImage(clickedImg) {
            const card = clickedImg.closest('.product-card');
            const mainImg = card.querySelector('.product-image');
            if (mainImg) {
                mainImg.src = clickedImg.src;
            }
        }
    </script>
</body>
</html>
`
